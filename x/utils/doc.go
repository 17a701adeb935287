/*
Package utils contains the decorators every handler stack is wrapped in:
panic recovery, logging, savepoints, action tags and metrics.
*/
package utils
