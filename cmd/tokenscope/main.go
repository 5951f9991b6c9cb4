// tokenscope estimates what a text costs to send to popular LLMs.
//
// It counts tokens, runs the text through a compression pipeline, and
// projects input and output costs for every model in the pricing catalog.
// The same analysis is available from the command line, over HTTP and as
// MCP tools:
//
//	# Analyze a file
//	tokenscope analyze notes.txt
//
//	# Analyze stdin as JSON
//	cat notes.txt | tokenscope analyze - --format json
//
//	# Price a single model
//	tokenscope analyze notes.txt --model openai/gpt-4o
//
//	# Print the compressed text
//	tokenscope compress notes.txt
//
//	# List the pricing catalog
//	tokenscope models --format csv
//
//	# Start the HTTP API
//	tokenscope serve --config tokenscope.yaml
//
//	# Serve MCP tools over stdio
//	tokenscope mcp
package main

func main() {
	Execute()
}
