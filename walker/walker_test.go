package walker

import (
	"context"
	"encoding/xml"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/vocab"
)

type Header struct {
	Status vocab.DocumentStatus
}

type sample struct {
	XMLName xml.Name `xml:"Sample"`
	Header
	Created  *model.ISO8601DateTime
	Subject  *model.Person
	Ids      []model.Identifier
	Empty    *model.Identifier
	Comment  string
	unexport string
}

func newSample() *sample {
	return &sample{
		Header:  Header{Status: vocab.DocumentStatusFinal},
		Created: model.Date(2024, time.January, 31),
		Subject: &model.Person{
			PersonNames: []model.PersonName{{FamilyName: "Citizen", NameUsages: []vocab.NameUsage{vocab.NameUsageLegal}}},
			Sex:         vocab.SexFemale,
		},
		Ids:      []model.Identifier{{Root: "1.2.3"}, {Root: "4.5.6", Extension: "x"}},
		unexport: "hidden",
	}
}

func collect(t *testing.T, root any) map[string]any {
	t.Helper()
	nodes := map[string]any{}
	err := Walk(context.Background(), root, func(n *Node) error {
		nodes[n.Path] = n.Value
		return nil
	})
	require.NoError(t, err)
	return nodes
}

func TestWalk_Paths(t *testing.T) {
	nodes := collect(t, newSample())

	assert.Equal(t, vocab.DocumentStatusFinal, nodes["Status"])
	assert.Equal(t, vocab.SexFemale, nodes["Subject.Sex"])
	assert.Equal(t, "Citizen", nodes["Subject.PersonNames[0].FamilyName"])
	assert.Equal(t, vocab.NameUsageLegal, nodes["Subject.PersonNames[0].NameUsages[0]"])

	id, ok := nodes["Ids[1]"].(*model.Identifier)
	require.True(t, ok)
	assert.Equal(t, "4.5.6", id.Root)

	_, ok = nodes["Created"].(*model.ISO8601DateTime)
	assert.True(t, ok)

	for _, missing := range []string{"XMLName", "Empty", "Comment", "unexport", "Created.Time", "Created.Precision"} {
		_, found := nodes[missing]
		assert.False(t, found, missing)
	}
}

func TestWalk_ValuesArePointersIntoTheGraph(t *testing.T) {
	s := newSample()
	err := Walk(context.Background(), s, func(n *Node) error {
		if id, ok := n.Value.(*model.Identifier); ok {
			id.AssigningAuthorityName = "seen"
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "seen", s.Ids[0].AssigningAuthorityName)
	assert.Equal(t, "seen", s.Ids[1].AssigningAuthorityName)
}

func TestWalk_SkipChildren(t *testing.T) {
	var paths []string
	err := Walk(context.Background(), newSample(), func(n *Node) error {
		paths = append(paths, n.Path)
		if n.Field == "Subject" {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, paths, "Subject")
	assert.NotContains(t, paths, "Subject.Sex")
	assert.Contains(t, paths, "Ids[0].Root")
}

func TestWalk_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	count := 0
	err := Walk(context.Background(), newSample(), func(n *Node) error {
		count++
		if n.Path == "Created" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Less(t, count, len(collect(t, newSample())))
}

func TestWalk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Walk(ctx, newSample(), func(*Node) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalk_Nil(t *testing.T) {
	assert.NoError(t, Walk(context.Background(), nil, func(*Node) error { return nil }))
	var s *sample
	assert.NoError(t, Walk(context.Background(), s, func(*Node) error { return nil }))
}
