// Package publish writes rendered fragments to a destination.
//
// Two backends are provided: DiskStore writes files below a directory and
// S3Store uploads objects with PutObject. Destinations are given as a file
// path or as an s3://bucket/key URL:
//
//	dest, err := publish.ParseDestination("s3://fragments/forms/country.html")
//	store, err := dest.Store(publish.S3Options{Region: "eu-west-1"})
//	location, err := store.Put(ctx, dest.Key, []byte(markup))
package publish
