/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of model.
* Models are encoded with go-amino, using the codec given to the bucket.
* Easy queries for one, exposed through the query router.

Sequences provide monotonically increasing keys, so a bucket can
allocate a fresh primary key for every stored model.
*/
package orm
