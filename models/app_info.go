package models

// AppInfo is what GET /api/version reports about a running sync server.
type AppInfo struct {
	Version        string   `json:"version"`
	SnapshotFormat int      `json:"snapshot_format"`
	Collections    []string `json:"collections"`
}
