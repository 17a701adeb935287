/*
Package safeholdtest provides mocks and helpers that make testing extensions
and the application easier.
*/
package safeholdtest
