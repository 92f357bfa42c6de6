// Package jwt assembles and validates compact-form JSON Web Tokens on top of
// the goJOSE signing engine, with strict segment parsing and an
// algorithm-confusion check on every validation path.
package jwt
