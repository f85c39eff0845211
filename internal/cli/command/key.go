// Package command provides CLI command definitions for cfwkv.
package command

import (
	"net/http"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cfwkv-go/internal/cli/connection"
)

// defaultKeyLimit is the key list page size. The API accepts 10 to 1000.
const defaultKeyLimit = 25

// KeyCommand returns the key subcommand group.
func KeyCommand() *cli.Command {
	return &cli.Command{
		Name:  "key",
		Usage: "Manage keys and values in a namespace",
		Subcommands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List all keys in a namespace",
				ArgsUsage: "NAMESPACE_ID",
				Flags: commandFlags(
					&cli.StringFlag{
						Name:  "limit",
						Usage: "The number of keys to include in the result set. Default: 25. Min: 10. Max: 1000",
					},
					&cli.StringFlag{
						Name:  "cursor",
						Usage: `Token indicating the position from which to continue when requesting the next set of records. See "result_info" for a value.`,
					},
					&cli.StringFlag{
						Name:  "prefix",
						Usage: "Filter which keys will be returned. Exact matches and any key names that begin with the prefix will be returned.",
					},
				),
				Action: keyList,
			},
			{
				Name:      "get",
				Usage:     "Read the key value for the namespace",
				ArgsUsage: "NAMESPACE_ID KEY",
				Flags:     commandFlags(),
				Action:    keyGet,
			},
			{
				Name:      "set",
				Usage:     "Create or update the key value for the namespace",
				ArgsUsage: "NAMESPACE_ID KEY VALUE",
				Flags:     commandFlags(),
				Action:    keySet,
			},
			{
				Name:      "delete",
				Usage:     "Delete the key from the namespace",
				ArgsUsage: "NAMESPACE_ID KEY",
				Flags:     commandFlags(),
				Action:    keyDelete,
			},
		},
	}
}

func keyList(c *cli.Context) error {
	args, err := requireArgs(c, "NAMESPACE_ID")
	if err != nil {
		return err
	}

	return invoke(c, func() (*connection.Request, error) {
		q := (&connection.Query{}).
			Add("limit", strconv.Itoa(intOption(c, "limit", defaultKeyLimit))).
			AddIfSet("cursor", c.String("cursor")).
			AddIfSet("prefix", c.String("prefix"))
		return connection.NewRequest(http.MethodGet, connection.WithQuery(connection.KeysPath(args[0]), q)), nil
	})
}

func keyGet(c *cli.Context) error {
	args, err := requireArgs(c, "NAMESPACE_ID", "KEY")
	if err != nil {
		return err
	}

	return invoke(c, func() (*connection.Request, error) {
		return connection.NewRequest(http.MethodGet, connection.ValuePath(args[0], args[1])), nil
	})
}

func keySet(c *cli.Context) error {
	args, err := requireArgs(c, "NAMESPACE_ID", "KEY", "VALUE")
	if err != nil {
		return err
	}

	return invoke(c, func() (*connection.Request, error) {
		return connection.NewTextRequest(http.MethodPut, connection.ValuePath(args[0], args[1]), args[2]), nil
	})
}

// keyDelete sends DELETE without a body, per the REST contract
// DELETE accounts/:account/storage/kv/namespaces/:namespace/values/:key.
func keyDelete(c *cli.Context) error {
	args, err := requireArgs(c, "NAMESPACE_ID", "KEY")
	if err != nil {
		return err
	}

	return invoke(c, func() (*connection.Request, error) {
		return connection.NewRequest(http.MethodDelete, connection.ValuePath(args[0], args[1])), nil
	})
}
