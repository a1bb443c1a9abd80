// Package services contains application services of the IIS CLI.
//
// AuthService wraps APIClient login/logout for callers holding the password
// in a byte slice. SessionService remembers the current session in the local
// database under a PIN and restores it later without the password.
package services
