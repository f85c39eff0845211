// Package command provides CLI command definitions for cfwkv.
package command

import (
	"net/http"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cfwkv-go/internal/cli/connection"
)

// Namespace list pagination defaults.
const (
	defaultPage    = 1
	defaultPerPage = 20
)

// NamespaceCommand returns the namespace subcommand group.
func NamespaceCommand() *cli.Command {
	return &cli.Command{
		Name:    "namespace",
		Aliases: []string{"ns"},
		Usage:   "Manage Workers KV namespaces",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List namespaces owned by the account",
				Flags: commandFlags(
					&cli.StringFlag{
						Name:  "page",
						Usage: "Pagination offset of the result set. Default: 1",
					},
					&cli.StringFlag{
						Name:  "perPage",
						Usage: "Number of namespaces to include per request. Default: 20",
					},
				),
				Action: namespaceList,
			},
			{
				Name:      "create",
				Usage:     "Create a namespace",
				ArgsUsage: "TITLE",
				Flags:     commandFlags(),
				Action:    namespaceCreate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a namespace",
				ArgsUsage: "NAMESPACE_ID",
				Flags:     commandFlags(),
				Action:    namespaceDelete,
			},
			{
				Name:      "rename",
				Usage:     "Rename the title of a namespace",
				ArgsUsage: "NAMESPACE_ID TITLE",
				Flags:     commandFlags(),
				Action:    namespaceRename,
			},
		},
	}
}

// namespaceTitle is the body of create and rename requests.
type namespaceTitle struct {
	Title string `json:"title"`
}

func namespaceList(c *cli.Context) error {
	if _, err := requireArgs(c); err != nil {
		return err
	}

	return invoke(c, func() (*connection.Request, error) {
		q := (&connection.Query{}).
			Add("page", strconv.Itoa(intOption(c, "page", defaultPage))).
			Add("per_page", strconv.Itoa(intOption(c, "perPage", defaultPerPage)))
		return connection.NewRequest(http.MethodGet, connection.WithQuery(connection.NamespacesPath(), q)), nil
	})
}

func namespaceCreate(c *cli.Context) error {
	args, err := requireArgs(c, "TITLE")
	if err != nil {
		return err
	}

	return invoke(c, func() (*connection.Request, error) {
		return connection.NewJSONRequest(http.MethodPost, connection.NamespacesPath(), namespaceTitle{Title: args[0]})
	})
}

func namespaceDelete(c *cli.Context) error {
	args, err := requireArgs(c, "NAMESPACE_ID")
	if err != nil {
		return err
	}

	return invoke(c, func() (*connection.Request, error) {
		return connection.NewRequest(http.MethodDelete, connection.NamespacePath(args[0])), nil
	})
}

func namespaceRename(c *cli.Context) error {
	args, err := requireArgs(c, "NAMESPACE_ID", "TITLE")
	if err != nil {
		return err
	}

	return invoke(c, func() (*connection.Request, error) {
		return connection.NewJSONRequest(http.MethodPut, connection.NamespacePath(args[0]), namespaceTitle{Title: args[1]})
	})
}
