package esocial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAcceptsGeneratedDocument(t *testing.T) {
	doc := NewBuilderWithClock(testClock()).Remuneration(testRemuneration(), 1)
	assert.Empty(t, Check(doc))
}

func TestCheckComplainsAboutEverything(t *testing.T) {
	problems := Check("<wrong>document</wrong>")

	assert.Len(t, problems, 6)
	assert.Contains(t, problems, "missing XML declaration")
	assert.Contains(t, problems, "missing eSocial root element")
}

func TestCheckFlagsUnknownEventKind(t *testing.T) {
	doc := Declaration +
		`<eSocial xmlns="` + namespaceBase + `evtAdmissao/` + schemaVersion + `">` +
		`<evtAdmissao Id="ID100394460000141202608251430000001"></evtAdmissao>` +
		`</eSocial>`

	problems := Check(doc)
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0], "no known event element")
}
