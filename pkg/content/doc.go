// Package content defines the closed set of greeting template shapes. Each
// template kind has exactly one record struct; the Record interface is sealed
// so callers can rely on Visit to handle every variant. Records are plain
// values with yaml/json tags for the catalog loader and validate tags that
// describe the fields each variant requires. Free text is never interpreted:
// names, signatures and captions may carry emoji or other decorative symbols,
// and media URLs are opaque locators that are never fetched.
package content
