// Package field orchestrates DAG finality via distributed state reduction.
//
// The field represents a superposition of rays (transaction paths) that
// aggregate multiple stellar processes (flare events) into a coherent finality
// layer. Where ray handles linear finality, field coordinates the complex,
// multi-dimensional case: parallel transactions, causal dependencies, and DAG
// vertex acceptance across the network.
package field
