// Package cli implements the interactive terminal client of the careerdesk
// portal: a REPL whose commands navigate between portal views. Every view
// render goes through the navigation guard, so protected views bounce to the
// login prompt and resume at the original destination after a successful
// login, exactly like their web counterparts.
package cli
