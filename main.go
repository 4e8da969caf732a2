// Command docscraper converts documentation pages into clean Markdown.
package main

import "github.com/gaurav-prasanna/docscraper/cmd"

func main() {
	cmd.Execute()
}
