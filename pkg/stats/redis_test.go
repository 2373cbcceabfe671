package stats

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisherPublish(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	pub, err := NewRedisPublisher(ctx, mr.Addr())
	require.NoError(t, err)
	defer pub.Close()

	run := sampleRun()
	id, err := pub.Publish(ctx, &run)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, err := mr.Get(RunKey(&run))
	require.NoError(t, err)

	var got PerformanceData
	require.NoError(t, json.Unmarshal([]byte(stored), &got))
	require.Equal(t, "Parallel", got.AlgorithmName)
	require.Equal(t, 640, got.Width)
	require.NotNil(t, got.Workers)
	require.Equal(t, 8, *got.Workers)
	require.Nil(t, got.Backend)
	require.Equal(t, RunTTL, mr.TTL(RunKey(&run)))

	entries, err := mr.Stream(RunsStream)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, id, entries[0].ID)
	require.Contains(t, entries[0].Values, "Parallel")
}

func TestRunKey(t *testing.T) {
	run := sampleRun()
	require.Equal(t, "gblur:run:Parallel:1773500966000000000", RunKey(&run))
}

func TestNewRedisPublisherUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisPublisher(context.Background(), addr)
	require.Error(t, err)
}
