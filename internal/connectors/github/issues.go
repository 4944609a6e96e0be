package github

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// ReferencePrefix marks a document ID as a GitHub issue.
const ReferencePrefix = "github:"

// IssueRef identifies one issue.
type IssueRef struct {
	Owner  string
	Repo   string
	Number int
}

func (r IssueRef) String() string {
	return fmt.Sprintf("%s%s/%s#%d", ReferencePrefix, r.Owner, r.Repo, r.Number)
}

// ParseRef parses github:<owner>/<repo>#<number>. The prefix is optional.
func ParseRef(id string) (IssueRef, error) {
	rest := strings.TrimPrefix(id, ReferencePrefix)

	path, num, ok := strings.Cut(rest, "#")
	if !ok {
		return IssueRef{}, fmt.Errorf("%w: %q", ErrInvalidReference, id)
	}
	owner, repo, ok := strings.Cut(path, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return IssueRef{}, fmt.Errorf("%w: %q", ErrInvalidReference, id)
	}
	number, err := strconv.Atoi(num)
	if err != nil || number <= 0 {
		return IssueRef{}, fmt.Errorf("%w: %q", ErrInvalidReference, id)
	}

	return IssueRef{Owner: owner, Repo: repo, Number: number}, nil
}

// FetchDocument fetches the referenced issue with its comments.
func (c *Client) FetchDocument(ctx context.Context, documentID string) (domain.RawDocument, error) {
	ref, err := ParseRef(documentID)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	issue, err := c.GetIssue(ctx, ref)
	if err != nil {
		return domain.RawDocument{}, err
	}

	var comments []*gh.IssueComment
	if issue.GetComments() > 0 {
		comments, err = c.ListComments(ctx, ref)
		if err != nil {
			return domain.RawDocument{}, err
		}
	}

	return domain.RawDocument{
		Title:   issue.GetTitle(),
		Content: issueText(issue, comments),
		URL:     issue.GetHTMLURL(),
	}, nil
}

// GetIssue fetches a single issue.
func (c *Client) GetIssue(ctx context.Context, ref IssueRef) (*gh.Issue, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	issue, resp, err := c.gh.Issues.Get(ctx, ref.Owner, ref.Repo, ref.Number)
	c.observe(resp)
	if err != nil {
		return nil, wrapError("get issue "+ref.String(), err, c.rateLimiter.Quota())
	}

	return issue, nil
}

// ListComments retrieves all comments for an issue, oldest first.
func (c *Client) ListComments(ctx context.Context, ref IssueRef) ([]*gh.IssueComment, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	var allComments []*gh.IssueComment

	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	for {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		comments, resp, err := c.gh.Issues.ListComments(ctx, ref.Owner, ref.Repo, ref.Number, opts)
		c.observe(resp)
		if err != nil {
			return nil, wrapError("list comments "+ref.String(), err, c.rateLimiter.Quota())
		}

		allComments = append(allComments, comments...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allComments, nil
}

// issueText renders the body followed by each comment under a header line.
func issueText(issue *gh.Issue, comments []*gh.IssueComment) string {
	var b strings.Builder
	b.WriteString(issue.GetBody())

	for _, comment := range comments {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "--- %s, %s\n", comment.GetUser().GetLogin(),
			comment.GetCreatedAt().Format(time.DateOnly))
		b.WriteString(comment.GetBody())
	}

	return b.String()
}
