// Package library implements higher-level operations over the Lidarr library:
// filtered listings, bulk monitoring changes, and import/export of artist
// collections in JSON, CSV and TSV formats.
//
// Filtering uses expr expressions evaluated against each artist, for example:
//
//	Monitored && AlbumCount == 0
//	hasTag("vinyl") && daysSince(Added) > 365
//	contains(Name, "orchestra") && SizeOnDisk == 0
package library
