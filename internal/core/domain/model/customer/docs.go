// Package customer holds the Customer aggregate and its enabled flag.
package customer
