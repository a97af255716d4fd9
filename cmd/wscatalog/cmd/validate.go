package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// errInvalidIdentifier is returned after the failure has been reported, so
// the command exits non-zero without repeating the message.
var errInvalidIdentifier = errors.New("identifier is not registered")

var validateCmd = &cobra.Command{
	Use:   "validate <identifier>",
	Short: "Check whether an identifier is a known topic, command or wire action",
	Long: `Validate looks an identifier up in the catalog. It accepts a topic
("tables.updated"), a full command ("command.list_tables") or the wire action
clients send ("list_tables").

Examples:
  wscatalog validate list_restaurants     # resolves to command.list_restaurants
  wscatalog validate list_restaurantz     # fails

Output:
  ✅ Success - Shows what the identifier is
  ❌ Error   - Shows that nothing in the catalog matches`,
	Args: cobra.ExactArgs(1),
	RunE: validateHandler,
}

func validateHandler(cmd *cobra.Command, args []string) error {
	id := args[0]
	out := cmd.OutOrStdout()

	reg, err := registry()
	if err != nil {
		return err
	}

	switch {
	case reg.IsTopic(id):
		fmt.Fprintf(out, "✅ '%s' is a topic\n", id)
	case reg.IsCommand(id):
		fmt.Fprintf(out, "✅ '%s' is a command\n", id)
		fmt.Fprintf(out, "   Action: %s\n", topicmgr.ActionOf(id))
	default:
		command, err := reg.ResolveAction(id)
		if err != nil {
			fmt.Fprintf(out, "❌ '%s' is not a topic, command or wire action\n", id)
			fmt.Fprintf(cmd.ErrOrStderr(), "\nUse 'wscatalog topics list' or 'wscatalog commands list' to see the catalog.\n")
			return errInvalidIdentifier
		}
		fmt.Fprintf(out, "✅ '%s' is a wire action\n", id)
		fmt.Fprintf(out, "   Command: %s\n", command)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
