package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"xdao.co/metaddr/cidutil"
	"xdao.co/metaddr/metadata"
	"xdao.co/metaddr/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "encode":
		return cmdEncode(args[1:], out, errOut)
	case "decode":
		return cmdDecode(args[1:], out, errOut)
	case "convert":
		return cmdConvert(args[1:], out, errOut)
	case "doc-addr":
		return cmdDocAddr(args[1:], out, errOut)
	case "types":
		return cmdTypes(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "mdaddr: metadata address encoder/decoder")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  mdaddr encode --type <prefix> --uuid <uuid> [--session-uuid <uuid>] [--name <name>] [--hex] [--json]")
	fmt.Fprintln(w, "  mdaddr decode [--hex] [--json] <address>")
	fmt.Fprintln(w, "  mdaddr convert --to <prefix> [--session-uuid <uuid>] [--name <name>] <address>")
	fmt.Fprintln(w, "  mdaddr doc-addr --type <scope|contractspec|scopespec> [--json] <file>")
	fmt.Fprintln(w, "  mdaddr types")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - prefixes: scope, session, record, contractspec, scopespec, recspec")
	fmt.Fprintln(w, "  - --session-uuid is required for session, --name for record and recspec")
	fmt.Fprintln(w, "  - doc-addr derives the address from the file's CIDv1 (raw, sha2-256) digest")
}

func newFlagSet(name string, errOut io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.SortFlags = false
	return fs
}

// parseFlags returns -1 when parsing succeeded, otherwise the exit code.
func parseFlags(fs *pflag.FlagSet, args []string) int {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	return -1
}

func reportError(errOut io.Writer, op string, err error) int {
	ce := model.ErrorFrom(err)
	if ce.RuleID != "" {
		fmt.Fprintf(errOut, "%s: %s [%s]: %s\n", op, ce.Code, ce.RuleID, ce.Message)
	} else {
		fmt.Fprintf(errOut, "%s: %s: %s\n", op, ce.Code, ce.Message)
	}
	return 1
}

func writeJSON(out io.Writer, errOut io.Writer, v any) int {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(errOut, "encode json: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, string(b))
	return 0
}

func writeDetails(out io.Writer, d model.AddressDetails) {
	fmt.Fprintf(out, "address: %s\n", d.Address)
	fmt.Fprintf(out, "type: %s\n", d.Type)
	fmt.Fprintf(out, "prefix: %s\n", d.Prefix)
	fmt.Fprintf(out, "key: 0x%02x\n", d.Key)
	fmt.Fprintf(out, "hex: %s\n", d.Hex)
	fmt.Fprintf(out, "primary-uuid: %s\n", d.PrimaryUUID)
	if d.SecondaryUUID != "" {
		fmt.Fprintf(out, "secondary-uuid: %s\n", d.SecondaryUUID)
	}
	if d.NameHashHex != "" {
		fmt.Fprintf(out, "name-hash: %s\n", d.NameHashHex)
	}
	if d.ParentAddress != "" {
		fmt.Fprintf(out, "parent: %s\n", d.ParentAddress)
	}
}

func cmdEncode(args []string, out io.Writer, errOut io.Writer) int {
	fs := newFlagSet("encode", errOut)

	var req model.EncodeRequest
	var asHex bool
	var asJSON bool

	fs.StringVar(&req.Type, "type", "", "Address type prefix")
	fs.StringVar(&req.PrimaryUUID, "uuid", "", "Primary UUID (scope, contract specification or scope specification)")
	fs.StringVar(&req.SecondaryUUID, "session-uuid", "", "Session UUID (session only)")
	fs.StringVar(&req.Name, "name", "", "Record or record specification name")
	fs.BoolVar(&asHex, "hex", false, "Print raw bytes as hex instead of bech32")
	fs.BoolVar(&asJSON, "json", false, "Print address details as JSON")

	if code := parseFlags(fs, args); code >= 0 {
		return code
	}
	if fs.NArg() != 0 || req.Type == "" || req.PrimaryUUID == "" {
		fmt.Fprintln(errOut, "usage: mdaddr encode --type <prefix> --uuid <uuid> [--session-uuid <uuid>] [--name <name>] [--hex] [--json]")
		return 2
	}

	addr, err := model.Encode(req)
	if err != nil {
		return reportError(errOut, "encode", err)
	}
	switch {
	case asJSON:
		return writeJSON(out, errOut, model.Describe(addr))
	case asHex:
		_, _ = fmt.Fprintln(out, addr.Hex())
	default:
		_, _ = fmt.Fprintln(out, addr)
	}
	return 0
}

func cmdDecode(args []string, out io.Writer, errOut io.Writer) int {
	fs := newFlagSet("decode", errOut)

	var fromHex bool
	var asJSON bool
	fs.BoolVar(&fromHex, "hex", false, "Input is raw address bytes as hex")
	fs.BoolVar(&asJSON, "json", false, "Print address details as JSON")

	if code := parseFlags(fs, args); code >= 0 {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: mdaddr decode [--hex] [--json] <address>")
		return 2
	}

	var addr metadata.Address
	var err error
	if fromHex {
		addr, err = metadata.FromHex(fs.Arg(0))
	} else {
		addr, err = metadata.FromBech32(fs.Arg(0))
	}
	if err != nil {
		return reportError(errOut, "decode", err)
	}

	d := model.Describe(addr)
	if asJSON {
		return writeJSON(out, errOut, d)
	}
	writeDetails(out, d)
	return 0
}

func cmdConvert(args []string, out io.Writer, errOut io.Writer) int {
	fs := newFlagSet("convert", errOut)

	var to string
	var sessionUUID string
	var name string
	fs.StringVar(&to, "to", "", "Target address type prefix")
	fs.StringVar(&sessionUUID, "session-uuid", "", "Session UUID (--to session)")
	fs.StringVar(&name, "name", "", "Record or record specification name (--to record|recspec)")

	if code := parseFlags(fs, args); code >= 0 {
		return code
	}
	if fs.NArg() != 1 || to == "" {
		fmt.Fprintln(errOut, "usage: mdaddr convert --to <prefix> [--session-uuid <uuid>] [--name <name>] <address>")
		return 2
	}
	target, ok := metadata.TypeForPrefix(strings.ToLower(to))
	if !ok {
		fmt.Fprintf(errOut, "unknown target type: %s\n", to)
		return 2
	}

	addr, err := metadata.FromBech32(fs.Arg(0))
	if err != nil {
		return reportError(errOut, "convert", err)
	}

	var derived metadata.Address
	switch target {
	case metadata.TypeScope:
		derived, err = addr.ScopeAddress()
	case metadata.TypeSession:
		if sessionUUID == "" {
			fmt.Fprintln(errOut, "convert: --session-uuid is required for --to session")
			return 2
		}
		u, perr := metadata.ParseUUID(sessionUUID)
		if perr != nil {
			return reportError(errOut, "convert", perr)
		}
		derived, err = addr.SessionAddress(u)
	case metadata.TypeRecord:
		derived, err = addr.RecordAddress(name)
	case metadata.TypeContractSpecification:
		derived, err = addr.ContractSpecAddress()
	case metadata.TypeRecordSpecification:
		derived, err = addr.RecordSpecAddress(name)
	default:
		fmt.Fprintf(errOut, "convert: cannot derive a %s address from another address\n", target)
		return 1
	}
	if err != nil {
		return reportError(errOut, "convert", err)
	}
	_, _ = fmt.Fprintln(out, derived)
	return 0
}

func cmdDocAddr(args []string, out io.Writer, errOut io.Writer) int {
	fs := newFlagSet("doc-addr", errOut)

	var typ string
	var asJSON bool
	fs.StringVar(&typ, "type", "", "Address type prefix (scope, contractspec or scopespec)")
	fs.BoolVar(&asJSON, "json", false, "Print CID and address details as JSON")

	if code := parseFlags(fs, args); code >= 0 {
		return code
	}
	if fs.NArg() != 1 || typ == "" {
		fmt.Fprintln(errOut, "usage: mdaddr doc-addr --type <scope|contractspec|scopespec> [--json] <file>")
		return 2
	}
	t, ok := metadata.TypeForPrefix(strings.ToLower(typ))
	if !ok {
		fmt.Fprintf(errOut, "unknown address type: %s\n", typ)
		return 2
	}

	path := fs.Arg(0)
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(path), err)
		return 1
	}
	id, err := cidutil.CIDv1RawSHA256CID(b)
	if err != nil {
		fmt.Fprintf(errOut, "cid %s: %v\n", filepath.Base(path), err)
		return 1
	}
	doc, err := model.DescribeDocument(t, id)
	if err != nil {
		return reportError(errOut, "doc-addr", err)
	}
	if asJSON {
		return writeJSON(out, errOut, doc)
	}
	_, _ = fmt.Fprintf(out, "%s %s\n", doc.Details.Address, doc.CID)
	return 0
}

func cmdTypes(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "usage: mdaddr types")
		return 2
	}
	for _, t := range metadata.Types() {
		_, _ = fmt.Fprintf(out, "0x%02x %-12s %2d %s\n", t.Key(), t.Prefix(), t.Size(), t)
	}
	return 0
}
