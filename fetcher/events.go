package fetcher

// FetchEvent reports progress for a single settled target.
type FetchEvent struct {
	URL     string
	Path    string // written file path, empty if the target failed
	Err     string
	Fetched int
	Total   int
}
