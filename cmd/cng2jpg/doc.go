// Package main hosts the cng2jpg CLI entrypoint and command graph.
//
// The root command converts a tree of .cng page images into .jpg files,
// optionally merging page pairs into spreads. The config subcommands scaffold
// and check the TOML file that supplies defaults for the root command's flags.
//
// Keep this package lean: conversion lives in internal/convert, and this
// package only resolves flags against configuration, wires logging, and
// renders progress and the end-of-run summary.
package main
