// Package chess implements the rules of standard chess: legal move
// generation, move application and terminal-state classification over
// immutable position values. It has no notion of search or evaluation;
// presentation and transport layers are expected to live elsewhere and
// consume this package.
package chess
