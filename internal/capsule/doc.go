// Guarantees that installer capabilities exist before first use.
//
// The capsule is the minimal environment that hosts a distribution's
// installer and its trust material. Fetching and unpacking the capsule is
// done by the surrounding build pipeline; this package only defines the
// [Provider] contract used by distribution backends and a [Checker] that
// verifies, through the target, that the required files are present.
package capsule
