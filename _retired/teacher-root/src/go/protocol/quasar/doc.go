// Package quasar provides post-quantum overlay: dual BLS + ring certificates.
//
// Quasar prepares for the quantum age by running both BLS (fast, classical)
// and ring signatures (quantum-safe, larger) in parallel. The system can
// seamlessly transition when quantum computers arrive, making the consensus
// future-proof. Quasars are among the most energetic objects in the universe.
package quasar
