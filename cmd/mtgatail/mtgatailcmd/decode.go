package mtgatailcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antalos/mtgatracker/schema"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
)

type cmdDecode struct {
	Type string `long:"type" short:"t" required:"true" description:"Message type of the payload, eg 'ClientToMatchServiceMessageType_EchoRequest'"`
	Args struct {
		Payload string `positional-arg-name:"PAYLOAD" description:"Base64 payload to decode. Read from stdin if omitted"`
	} `positional-args:"yes"`
}

func init() {
	CommandRegistry.AddCommand("", "decode", "Decode a client message payload", `
Decode a base64 client message payload and print its text form.

The schema is selected by the portion of --type following its first
underscore, as with records carrying a 'clientToMatchServiceMessageType'.

Decode a payload copied from a record:
>    mtgatail decode --type ClientToMatchServiceMessageType_EchoRequest CMAHEgJoaQ==
`, &cmdDecode{})
}

func (cmd *cmdDecode) Execute([]string) error {
	defer startup()()
	return cmd.run(os.Stdin, os.Stdout)
}

func (cmd *cmdDecode) run(stdin io.Reader, out io.Writer) error {
	var payload = cmd.Args.Payload
	if payload == "" {
		var b, err = io.ReadAll(stdin)
		if err != nil {
			return errors.WithMessage(err, "reading payload")
		}
		payload = string(b)
	}
	payload = strings.TrimSpace(payload)

	var tag, msg, err = schema.Decode(schema.Default, cmd.Type, payload)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(out, "# %s (%s)\n", tag, proto.MessageName(msg)); err != nil {
		return err
	}
	return proto.MarshalText(out, msg)
}
