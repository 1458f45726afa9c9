package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jask/designplay/internal/persist"
	"github.com/jask/designplay/internal/store"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var errNotSaved = errors.New("snapshot was not saved, see the log for details")

func newSnapshotCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export, import or reset the saved state",
	}
	cmd.AddCommand(
		newSnapshotExportCmd(c),
		newSnapshotImportCmd(c),
		newSnapshotSessionsCmd(c),
		&cobra.Command{
			Use:   "reset",
			Short: "Clear the saved state of the current session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := c.openSession(cmd.Context())
				if err != nil {
					return err
				}
				defer sess.Close()
				sess.adapter.Clear(cmd.Context())
				if sess.adapter.Failures() > 0 {
					return errNotSaved
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", sess.adapter.Slot())
				return err
			},
		},
		&cobra.Command{
			Use:   "purge",
			Short: "Remove sessions older than store.ttl",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := c.openSession(cmd.Context())
				if err != nil {
					return err
				}
				defer sess.Close()
				n := sess.adapter.Purge(cmd.Context(), time.Now(), c.cfg.Store.TTL)
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "purged %d session(s)\n", n)
				return err
			},
		},
	)
	return cmd
}

func newSnapshotExportCmd(c *cli) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the saved state to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()
			return writeSnapshot(cmd.OutOrStdout(), sess.store.State(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json|yaml")
	return cmd
}

func newSnapshotImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the saved state with a JSON or YAML snapshot",
		Long: `Replace the saved state with a snapshot file. Keys that are missing or do
not decode fall back to their defaults; the fallen back keys are reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			snap, err := readSnapshot(data, args[0])
			if err != nil {
				return err
			}
			st, fellBack := store.Restore(snap, time.Now())

			sess, err := c.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()
			sess.adapter.Save(cmd.Context(), st)
			if sess.adapter.Failures() > 0 {
				return errNotSaved
			}
			c.logger.Info("snapshot imported", zap.String("file", args[0]), zap.Strings("defaulted", fellBack))
			if len(fellBack) > 0 {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported, defaults used for: %s\n", strings.Join(fellBack, ", "))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "imported")
			return err
		},
	}
}

func newSnapshotSessionsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List the sessions stored in the sqlite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()
			lister, ok := sess.adapter.Slot().(persist.SessionLister)
			if !ok {
				return fmt.Errorf("store driver %q keeps a single session", c.cfg.Store.Driver)
			}
			sessions, err := lister.Sessions(cmd.Context())
			if err != nil {
				return fmt.Errorf("list sessions: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, s := range sessions {
				mark := " "
				if s.SessionID == c.cfg.Store.Session {
					mark = "*"
				}
				if _, err := fmt.Fprintf(out, "%s %s  %d slot(s)  %s\n", mark, s.SessionID, s.Slots, s.UpdatedAt.Local().Format(time.DateTime)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func writeSnapshot(w io.Writer, st store.State, format string) error {
	data, err := store.Encode(st)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	switch format {
	case formatJSON:
		var buf map[string]json.RawMessage
		if err := json.Unmarshal(data, &buf); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(buf)
	case formatYAML:
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json|yaml)", format)
	}
}

// readSnapshot decodes a snapshot file; .yaml and .yml files go through yaml.v3.
func readSnapshot(data []byte, name string) (store.Snapshot, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml snapshot: %w", err)
		}
		js, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml snapshot: %w", err)
		}
		data = js
	}
	snap, err := store.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, nil
}
