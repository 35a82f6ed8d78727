// Package filex provides the file helpers pier needs around its config file:
// existence checks, whole-file reads and writes, and creating a config file
// together with its parent directory.
package filex
