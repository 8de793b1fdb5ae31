package apiclient

import "strings"

// NormalizeImageURL resolves a possibly relative image path against base.
// Empty input yields nil; absolute http(s) URLs pass through.
func NormalizeImageURL(base string, imageURL *string) *string {
	if imageURL == nil || *imageURL == "" {
		return nil
	}
	u := *imageURL
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return &u
	}
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	u = strings.TrimRight(base, "/") + u
	return &u
}

// ImageURL is NormalizeImageURL against the client's base URL.
func (c *Client) ImageURL(imageURL *string) *string {
	return NormalizeImageURL(c.baseURL, imageURL)
}
