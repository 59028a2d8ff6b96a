// Package artifactory provides types, interfaces, and helpers for working
// with the Artifactory REST API.
//
// # Overview
//
// The artifactory package defines the domain types (e.g., User, Group,
// Permission, the repository variants, artifact info records) and the
// interfaces for resource-oriented clients (e.g., UsersClient,
// ArtifactsClient). A concrete implementation of these clients is provided
// by the artifactoryclient package, which wires configuration, transport,
// and authentication. Most consumers should import artifactoryclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/artifactory/pkg/artifactory"
//	  "github.com/fivetwenty-io/artifactory/pkg/artifactoryclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := artifactoryclient.New(&artifactory.Config{
//	    BaseURL:  "https://artifactory.example.com/artifactory",
//	    Username: "admin",
//	    Password: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  user, err := cli.Users().Get(ctx, "alice")
//	  if err != nil { log.Fatal(err) }
//	  _ = user
//	}
//
// # Existence semantics
//
// Create, Update, and Delete on the named resources (users, groups,
// permissions, repositories) issue an existence check before the write.
// Create fails with AlreadyExistsError when the name already resolves;
// Update and Delete propagate NotFoundError when it does not. The check
// and the write are two separate requests and are not transactional: two
// overlapping Create calls for the same name can both pass the check, in
// which case the remote system arbitrates.
//
// # Queries
//
// Use Aql to express structured searches and Client.Aql().Query to execute
// them. BuildQuery translates an Aql value into the query-language text
// the search endpoint expects.
package artifactory
