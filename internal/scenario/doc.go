// Package scenario defines the calls a volley makes against the microblog API.
//
// A [Case] is one call: either creating a post or liking one. The builtin
// suite mixes valid and invalid inputs so a run probes both the happy path
// and the server's rejection behavior:
//
//	cases := scenario.Builtin()
//
// Custom suites load from YAML or JSON files. Each entry names an op and its
// arguments:
//
//	- op: post
//	  author: Alice
//	  content: Hello from a file
//	- op: like
//	  id: 42
//	- op: like
//	  id: banana
//
// Like ids keep the type they were written with, including an explicit null,
// so malformed-id probes reach the server unchanged.
//
// # Datasets
//
// A case file may reference dataset fields with {{field}} placeholders.
// Templated cases are instantiated once per record at load time, in
// record order and in place; cases without placeholders stay single:
//
//	- op: post
//	  author: "{{name}}"
//	  content: "{{message}}"
//
// With a three-record dataset this entry yields three cases.
package scenario
