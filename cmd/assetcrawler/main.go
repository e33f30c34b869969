// Command assetcrawler walks every page of a site reachable from a start URL
// and prints the images, scripts and stylesheets each page references.
//
// Usage:
//
//	assetcrawler [flags] <start-url>
package main

func main() {
	Execute()
}
