// Package github wraps the GitHub API operations used by ghprovision:
// repository creation, collaborator invitations, and account diagnostics.
package github

import (
	"context"

	"github.com/google/go-github/v58/github"
	"golang.org/x/oauth2"
)

// PermissionPush grants write access. Collaborator invitations always use
// this level; it is not user-configurable.
const PermissionPush = "push"

// Repository is the in-process handle to a remotely created repository. It is
// the only state carried from the create phase into the invite phase.
type Repository struct {
	Owner   string
	Name    string
	HTMLURL string
	Private bool
}

// Client wraps the GitHub API client
type Client struct {
	client *github.Client
	ctx    context.Context
}

// NewClient creates a new GitHub client with PAT authentication
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
		ctx:    ctx,
	}
}

// CreateRepository creates a new repository on the authenticated user's
// account. Naming rules are enforced by GitHub, not locally; a duplicate name
// comes back as a validation error.
func (c *Client) CreateRepository(name, description string, private bool) (*Repository, error) {
	repo := &github.Repository{
		Name:        github.String(name),
		Description: github.String(description),
		Private:     github.Bool(private),
	}

	created, resp, err := c.client.Repositories.Create(c.ctx, "", repo)
	if err != nil {
		return nil, apiError(resp, err)
	}

	return &Repository{
		Owner:   created.GetOwner().GetLogin(),
		Name:    created.GetName(),
		HTMLURL: created.GetHTMLURL(),
		Private: created.GetPrivate(),
	}, nil
}

// AddCollaborator invites username to the repository with the given
// permission level.
func (c *Client) AddCollaborator(repo *Repository, username, permission string) error {
	opts := &github.RepositoryAddCollaboratorOptions{
		Permission: permission,
	}

	_, resp, err := c.client.Repositories.AddCollaborator(c.ctx, repo.Owner, repo.Name, username, opts)
	if err != nil {
		return apiError(resp, err)
	}

	return nil
}

// GetAuthenticatedUser returns the login of the account the token belongs to.
func (c *Client) GetAuthenticatedUser() (string, error) {
	user, resp, err := c.client.Users.Get(c.ctx, "")
	if err != nil {
		return "", apiError(resp, err)
	}

	return user.GetLogin(), nil
}

// ListRepositories returns the authenticated user's repositories, most
// recently updated first.
func (c *Client) ListRepositories() ([]*Repository, error) {
	opts := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	repos, resp, err := c.client.Repositories.List(c.ctx, "", opts)
	if err != nil {
		return nil, apiError(resp, err)
	}

	result := make([]*Repository, 0, len(repos))
	for _, r := range repos {
		result = append(result, &Repository{
			Owner:   r.GetOwner().GetLogin(),
			Name:    r.GetName(),
			HTMLURL: r.GetHTMLURL(),
			Private: r.GetPrivate(),
		})
	}

	return result, nil
}

// ValidateToken checks that the token works by fetching the authenticated
// user.
func (c *Client) ValidateToken() error {
	_, err := c.GetAuthenticatedUser()
	return err
}

// apiError classifies an API failure by status code. A nil response means
// the request never reached GitHub.
func apiError(resp *github.Response, err error) error {
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	return ClassifyError(statusCode, err)
}
