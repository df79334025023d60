// Package testsupport builds page fixtures shared by package tests.
package testsupport
