// Package hpremc searches for low-energy conformations of a linear HP
// (hydrophobic/polar) chain on the 2-D square lattice.
//
// What is hpremc?
//
//	A small, zero-dependency toolkit that brings together:
//
//	  • Lattice primitives: positions, adjacency, self-avoiding-walk validity
//	  • A move set:        end / corner / crankshaft / pull local transforms
//	  • Single-temperature Monte Carlo search with Metropolis acceptance
//	  • Replica-Exchange Monte Carlo (REMC) over a temperature ladder
//	  • Two parallel execution strategies over REMC: ensemble and intra-run
//
// Under the hood, everything is organized under focused subpackages:
//
//	hpstring/      — HP alphabet validation
//	lattice/       — position arithmetic and adjacency on ℤ²
//	conformation/  — ordered, self-avoiding chain of lattice positions
//	energy/        — H-H topological contact energy
//	initconf/      — linear and random self-avoiding-walk generators
//	moves/         — end, corner, crankshaft, pull, and the move dispatcher
//	mcsearch/      — Metropolis Monte Carlo search at a fixed temperature
//	remc/          — replica-exchange driver over a temperature ladder
//	parallel/      — ensemble (REMC_multi) and intra-run (REMC_paral) executors
//	rng/           — seeded, derivable random number streams
//
// This module covers the lattice model, its energy function, and the
// stochastic search over it. The interactive front-end, plotting of
// conformations, CLI argument parsing, and HP-notation expansion are
// external collaborators and out of scope here.
//
//	go get github.com/latticefold/hpremc
package hpremc
