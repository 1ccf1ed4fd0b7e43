// Package provision implements the interactive repository provisioning flow:
// prompt, create, report, then optionally invite a collaborator.
package provision

import (
	"github.com/lcgerke/ghprovision/internal/errors"
	"github.com/lcgerke/ghprovision/internal/github"
	"github.com/lcgerke/ghprovision/internal/prompt"
	"github.com/lcgerke/ghprovision/internal/ui"
)

// API is the subset of GitHub operations the provisioner needs.
type API interface {
	CreateRepository(name, description string, private bool) (*github.Repository, error)
	AddCollaborator(repo *github.Repository, username, permission string) error
}

// Provisioner runs a single provisioning pass. There is no retry and no
// looping back; each run is one trip through the flow.
type Provisioner struct {
	api API
	in  *prompt.Reader
	out *ui.Output
}

// New creates a Provisioner over the given API and terminal streams.
func New(api API, in *prompt.Reader, out *ui.Output) *Provisioner {
	return &Provisioner{
		api: api,
		in:  in,
		out: out,
	}
}

// Run executes the flow: collect name, description and visibility, create the
// repository, print the result, then optionally collect a username and invite
// them with push permission.
//
// Remote failures are printed and end the affected phase; they do not
// propagate as an error return. An invite failure leaves the created
// repository intact. The returned error covers input stream problems only.
func (p *Provisioner) Run() error {
	name, err := p.in.Line("Enter the name of the new GitHub repository: ")
	if err != nil {
		return errors.InputAborted(err)
	}

	description, err := p.in.Line("Enter a description for the repository (optional): ")
	if err != nil {
		return errors.InputAborted(err)
	}

	isPrivate, err := p.in.YesNo("Do you want the repository to be private? (yes/no): ")
	if err != nil {
		return errors.InputAborted(err)
	}

	repo, err := p.api.CreateRepository(name, description, isPrivate)
	if err != nil {
		p.out.Failuref("Error: %v", err)
		return nil
	}

	p.out.Successf("Repository %q created successfully! URL: %s", repo.Name, repo.HTMLURL)

	invite, err := p.in.YesNo("Do you want to invite someone to this repository? (yes/no): ")
	if err != nil {
		return errors.InputAborted(err)
	}
	if !invite {
		return nil
	}

	username, err := p.in.Line("Enter the GitHub username to invite: ")
	if err != nil {
		return errors.InputAborted(err)
	}

	if err := p.api.AddCollaborator(repo, username, github.PermissionPush); err != nil {
		p.out.Failuref("Error: failed to invite %s: %v", username, err)
		return nil
	}

	p.out.Successf("Invitation sent to %s for repository %q.", username, repo.Name)
	return nil
}
