package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/clock"
	"github.com/haukened/rr-wire/internal/dns/common/log"
	"github.com/haukened/rr-wire/internal/dns/common/rrdata"
	"github.com/haukened/rr-wire/internal/dns/config"
	"github.com/haukened/rr-wire/internal/dns/dnssec"
	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/repos/anchors"
	"github.com/haukened/rr-wire/internal/dns/repos/keystore"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "rr-keyctl"
)

const usage = `usage: rr-keyctl <command> [args]

commands:
  keygen <owner>                      generate a signing key and store it
  ds <owner> <keytag>                 print the DS record for a stored key
  list <owner>                        list stored keys for an owner
  delete <owner> <keytag>             remove a stored key
  decode <type> <hex-rdata>           decode wire rdata to presentation
  encode <type> <token> [token...]    encode presentation rdata to hex
  covers <owner> <ds-line> <key-line> check whether a DS record covers a DNSKEY
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	app := &application{cfg: cfg, clk: &clock.RealClock{}}
	if err := app.run(os.Args[1], os.Args[2:]); err != nil {
		log.Error(map[string]any{"command": os.Args[1], "error": err.Error()}, "Command failed")
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

// application holds the tool's dependencies; the keystore is opened only
// by the commands that need it.
type application struct {
	cfg *config.AppConfig
	clk clock.Clock
}

func (a *application) run(command string, args []string) error {
	switch command {
	case "keygen":
		return a.keygen(args)
	case "ds":
		return a.ds(args)
	case "list":
		return a.list(args)
	case "delete":
		return a.delete(args)
	case "decode":
		return a.decode(args)
	case "encode":
		return a.encode(args)
	case "covers":
		return a.covers(args)
	case "version":
		fmt.Printf("%s %s\n", appName, version)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *application) openStore() (keystore.Store, error) {
	return keystore.New(a.cfg.KeystorePath, a.clk)
}

func (a *application) keygen(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("keygen expects exactly one owner name")
	}
	owner := args[0]
	alg := a.cfg.AlgorithmNumber()

	// zone signing keys get ZONE; the SEP bit marks the key a DS will bind
	flags := rrdata.DNSKEYFlagZone | rrdata.DNSKEYFlagSEP
	key, priv, err := dnssec.GenerateKey(alg, flags, nil)
	if err != nil {
		return err
	}
	blob, err := dnssec.MarshalPrivateKey(alg, priv)
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	tag, err := store.Put(owner, key, blob)
	if err != nil {
		return err
	}
	log.Info(map[string]any{
		"owner":     owner,
		"algorithm": dnssec.AlgorithmName(alg),
		"keytag":    tag,
	}, "Generated signing key")

	fmt.Printf("%s. IN DNSKEY %s\n", strings.TrimSuffix(owner, "."), key.String())
	fmt.Printf("; keytag %d\n", tag)
	return nil
}

func (a *application) ds(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("ds expects an owner name and a key tag")
	}
	owner := args[0]
	tag, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return fmt.Errorf("invalid key tag %q", args[1])
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entry, err := store.Get(owner, uint16(tag))
	if err != nil {
		return err
	}
	ds, err := dnssec.NewDS(entry.Owner, entry.Key, a.cfg.DigestType)
	if err != nil {
		return err
	}
	fmt.Printf("%s. IN DS %s\n", entry.Owner, ds.String())
	return nil
}

func (a *application) list(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("list expects exactly one owner name")
	}
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entries, err := store.List(args[0])
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%-8d %-18s %s  %s\n", e.KeyTag, dnssec.AlgorithmName(e.Key.Algorithm),
			e.CreatedAt.Format("2006-01-02"), flagNames(e.Key))
	}
	return nil
}

func (a *application) delete(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("delete expects an owner name and a key tag")
	}
	tag, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return fmt.Errorf("invalid key tag %q", args[1])
	}
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Delete(args[0], uint16(tag)); err != nil {
		return err
	}
	log.Info(map[string]any{"owner": args[0], "keytag": tag}, "Deleted signing key")
	return nil
}

func (a *application) decode(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("decode expects a record type and hex rdata")
	}
	rrtype := domain.RRTypeFromString(strings.ToUpper(args[0]))
	if rrtype == 0 {
		return fmt.Errorf("unknown record type %q", args[0])
	}
	body, err := hex.DecodeString(strings.ToLower(args[1]))
	if err != nil {
		return fmt.Errorf("invalid hex rdata: %w", err)
	}
	rd, err := rrdata.DecodeBytes(rrtype, body)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", rrtype, rd.String())
	return nil
}

func (a *application) encode(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("encode expects a record type and rdata tokens")
	}
	rrtype := domain.RRTypeFromString(strings.ToUpper(args[0]))
	if rrtype == 0 {
		return fmt.Errorf("unknown record type %q", args[0])
	}
	rd, err := rrdata.Parse(rrtype, "", args[1:])
	if err != nil {
		return err
	}
	body, err := rrdata.PackBytes(rd)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", strings.ToUpper(hex.EncodeToString(body)))
	return nil
}

func (a *application) covers(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("covers expects an owner, a DS rdata line, and a DNSKEY rdata line")
	}
	owner := args[0]
	dsRd, err := rrdata.Parse(domain.RRTypeDS, "", strings.Fields(args[1]))
	if err != nil {
		return fmt.Errorf("DS: %w", err)
	}
	keyRd, err := rrdata.Parse(domain.RRTypeDNSKEY, "", strings.Fields(args[2]))
	if err != nil {
		return fmt.Errorf("DNSKEY: %w", err)
	}

	set, err := anchors.New(1, a.cfg.AnchorCache)
	if err != nil {
		return err
	}
	set.Add(owner, dsRd.(*rrdata.DS))
	ok, err := set.Covers(owner, keyRd.(*rrdata.DNSKEY))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no: DS does not cover DNSKEY")
		os.Exit(1)
	}
	fmt.Println("yes: DS covers DNSKEY")
	return nil
}

func flagNames(key *rrdata.DNSKEY) string {
	var names []string
	if key.IsZoneKey() {
		names = append(names, "ZONE")
	}
	if key.IsSecureEntryPoint() {
		names = append(names, "SEP")
	}
	if key.IsRevoked() {
		names = append(names, "REVOKE")
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "|")
}
