// Package artifactoryclient provides the main entry point for creating
// Artifactory API clients.
//
// New wires configuration, the HTTP transport, Basic authentication, and
// the resource clients into a single artifactory.Client:
//
//	cli, err := artifactoryclient.New(&artifactory.Config{
//	  BaseURL:  "https://artifactory.example.com/artifactory",
//	  Username: "admin",
//	  Password: "secret",
//	})
package artifactoryclient
