// Defines the abstract capabilities a build step can request.
//
// A [Feature] names what a step needs ("a C toolchain", "the Python 2
// headers") without naming any package. Distribution tables in the distro
// package translate features into concrete package names. Features carry no
// payload and are compared by value.
package feature
