package main

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_LiberaRecursosSiElComandoFalla(t *testing.T) {
	root, e := newRootCmd()
	var released []string
	// Reemplaza la conexión real por recursos de prueba.
	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		e.cleanups = append(e.cleanups,
			func() { released = append(released, "pool") },
			func() { released = append(released, "redis") })
		return nil
	}
	boom := errors.New("fallo de sincronización")
	root.AddCommand(&cobra.Command{
		Use:  "falla",
		RunE: func(*cobra.Command, []string) error { return boom },
	})
	root.SetArgs([]string{"falla"})

	err := execute(context.Background(), root, e)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"redis", "pool"}, released, "se liberan en orden inverso")
}

func TestRootCmd_RegistraSubcomandos(t *testing.T) {
	root, _ := newRootCmd()
	for _, name := range []string{"migrate", "sync", "counts", "sessions", "seed"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
