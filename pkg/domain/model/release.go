package model

// LatestRelease is the subset of GET /repos/{org}/{repo}/releases/latest used by this client.
type LatestRelease struct {
	TagName string `json:"tag_name" yaml:"tag_name"`
}
