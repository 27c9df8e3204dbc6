package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"parley/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// viewer dumps the keyspace of a running (or stopped) instance to stdout.
// It opens the database read-only so it can run next to the gateway.
func main() {
	_ = godotenv.Load()
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan (empty scans everything)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	header := color.New(color.BgBlack, color.FgGreen).Render(" PARLEY KEYSPACE ")
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Entity ID", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			// Secondary indexes carry no payload worth printing
			if strings.HasPrefix(key, "user:email:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				kind, entityID, detail := describe(key, v)
				table.Append([]string{key, kind, shortID(entityID), detail})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func describe(key string, val []byte) (kind, entityID, detail string) {
	parts := strings.Split(key, ":")
	namespace := parts[0]
	entityID = parts[len(parts)-1]

	switch namespace {
	case "server":
		var s domain.Server
		if err := json.Unmarshal(val, &s); err == nil {
			return "SERVER", s.ID, fmt.Sprintf("%s (owner %s)", s.Name, shortID(s.OwnerID))
		}
	case "channel":
		var c domain.Channel
		if err := json.Unmarshal(val, &c); err == nil {
			return "CHANNEL", c.ID, fmt.Sprintf("#%s [%s]", c.Name, c.Kind)
		}
	case "role":
		var r domain.Role
		if err := json.Unmarshal(val, &r); err == nil {
			return "ROLE", r.ID, fmt.Sprintf("%s pos=%d perms=%#x", r.Name, r.Position, uint64(r.Permissions))
		}
	case "member":
		var m domain.Membership
		if err := json.Unmarshal(val, &m); err == nil {
			return "MEMBER", m.UserID, fmt.Sprintf("server=%s role=%s", shortID(m.ServerID), m.RoleID)
		}
	case "voice":
		var p domain.VoiceParticipant
		if err := json.Unmarshal(val, &p); err == nil {
			return "VOICE", p.UserID, fmt.Sprintf("channel=%s muted=%t deafened=%t", shortID(p.ChannelID), p.IsMuted, p.IsDeafened)
		}
	case "user":
		var u domain.User
		if err := json.Unmarshal(val, &u); err == nil {
			return "USER", u.ID, fmt.Sprintf("%s <%s>", u.Username, u.Email)
		}
	}
	return "RAW", entityID, fmt.Sprintf("Size: %d bytes", len(val))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	return badger.Open(opts)
}
