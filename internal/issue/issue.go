// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	LockfileNotFoundId Id = iota + 1
	LockfileParseErrorId
	PrefetchToolNotFoundId
	PrefetchFailedId
	PrefetchOutputMalformedId
	OverlayWriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // external documentation worth pointing the user at
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	lockfileNotFoundIssue = &Issue{
		id: LockfileNotFoundId,
		mdMsg: `
# No lock file found!

We looked for a poetry.lock file but couldn't read one.

## Things you can try:
- Generate the lock file from your pyproject.toml:
~~~
$ poetry lock
~~~

- Or point overlock at the right path:
~~~
$ overlock lock --lock path/to/poetry.lock
~~~`,
	}

	lockfileParseErrorIssue = &Issue{
		id: LockfileParseErrorId,
		mdMsg: `
# Failed to parse the lock file!

The file exists but is not a poetry.lock TOML document we understand.

## Common causes:
- The file was hand-edited and is no longer valid TOML
- A merge conflict left conflict markers in the file
- The path points at pyproject.toml instead of poetry.lock

## Things you can try:
- Regenerate the lock file:
~~~
$ poetry lock
~~~

- Check the file for conflict markers (` + "`<<<<<<<`" + `)`,
	}

	prefetchToolNotFoundIssue = &Issue{
		id: PrefetchToolNotFoundId,
		mdMsg: `
# Prefetch tool not found!

overlock delegates hashing to the Nix prefetch tools, and the one it
needed is not on your PATH.

## Required tools:
- **nix-prefetch-url** for url-sourced packages
- **nix-prefetch-git** for git-sourced packages

## Things you can try:
- Enter a shell that has them:
~~~
$ nix-shell -p nix nix-prefetch-git
~~~

- Or configure alternative tool paths in ~/.config/overlock/config.toml:
~~~toml
[prefetch]
url_tool = "/path/to/nix-prefetch-url"
git_tool = "/path/to/nix-prefetch-git"
~~~`,
	}

	prefetchFailedIssue = &Issue{
		id: PrefetchFailedId,
		mdMsg: `
# A prefetch failed!

An external prefetch tool exited non-zero while hashing a package source.
Its error output is printed above verbatim.

## Common causes:
- The source URL is unreachable or requires authentication
- The pinned git revision no longer exists on the remote
- No network access from the current sandbox

## Things you can try:
- Fetch the URL manually to check it is reachable
- Re-run 'poetry lock' if the upstream repository rewrote history
- Re-run overlock; nothing was written, so a re-run is safe`,
	}

	prefetchOutputMalformedIssue = &Issue{
		id: PrefetchOutputMalformedId,
		mdMsg: `
# Unexpected prefetch output!

nix-prefetch-git exited successfully but its output was not the JSON
document we expect (url, rev, sha256).

## Things you can try:
- Check your nix-prefetch-git version; very old releases printed a
  different format
- Run the tool by hand and inspect its stdout:
~~~
$ nix-prefetch-git --url <url> --rev <rev>
~~~`,
	}

	overlayWriteFailedIssue = &Issue{
		id: OverlayWriteFailedId,
		mdMsg: `
# Failed to write the overlay!

All fetches succeeded but the output file could not be written, so that
work is lost and the run must be repeated.

## Things you can try:
- Check permissions on the output directory
- Pass a writable location:
~~~
$ overlock lock --out /tmp/poetry-git-overlay.nix
~~~`,
	}

	issues = map[Id]*Issue{
		lockfileNotFoundIssue.Id():        lockfileNotFoundIssue,
		lockfileParseErrorIssue.Id():      lockfileParseErrorIssue,
		prefetchToolNotFoundIssue.Id():    prefetchToolNotFoundIssue,
		prefetchFailedIssue.Id():          prefetchFailedIssue,
		prefetchOutputMalformedIssue.Id(): prefetchOutputMalformedIssue,
		overlayWriteFailedIssue.Id():      overlayWriteFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
