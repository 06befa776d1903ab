// Package examples provides the catalog of example math queries offered to
// users by the search page and help panel.
//
// The default catalog is embedded YAML. A deployment may point the server at
// its own YAML file with the same shape.
//
// Example:
//
//	catalog, err := examples.Load()
//	for _, ex := range catalog.ByCategory("geometry") {
//	    fmt.Println(ex.Query)
//	}
package examples
