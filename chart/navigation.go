package chart

import "net/url"

// DetailsLink is the detail view reference for a document of collection
func DetailsLink(documentID, collection string) string {
	return "details?id=" + url.QueryEscape(documentID) + "&collection=" + url.QueryEscape(collection)
}
