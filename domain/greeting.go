package domain

// Greeting is the body written for every request, whatever its method, path,
// headers or body.
const Greeting = "Hello, World!"
