package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IdentName(t *testing.T) {
	assert.Equal(t, "IDMain", IdentName("idMain", true))
	assert.Equal(t, "idMain", IdentName("IDMain", false))
	assert.Equal(t, "ID", IdentName("id", true))
	assert.Equal(t, "url", IdentName("URL", false))
	assert.Equal(t, "Identity", IdentName("identity", true))
	assert.Equal(t, "Name", IdentName("name", true))
	assert.Equal(t, "name", IdentName("Name", false))
	assert.Equal(t, "sETName", IdentName("SETName", false))
	assert.Equal(t, "", IdentName("", true))
}

func Test_LegalIdentName(t *testing.T) {
	assert.Equal(t, "person_age", LegalIdentName("person-age"))
	assert.Equal(t, "_1st", LegalIdentName("1st"))
	assert.Equal(t, "type_", LegalIdentName("type"))
	assert.Equal(t, "Age", LegalIdentName("Age"))
}

func Test_TypeReceiverVar(t *testing.T) {
	assert.Equal(t, "a", TypeReceiverVar("1asd"))
	assert.Equal(t, "r", TypeReceiverVar(""))
	assert.Equal(t, "e", TypeReceiverVar("qw.erty"))
	assert.Equal(t, "q", TypeReceiverVar("qw."))
	assert.Equal(t, "p", TypeReceiverVar("Person"))
}

func Test_GetTypeName(t *testing.T) {
	assert.Equal(t, "Person", GetTypeName("Person", ""))
	assert.Equal(t, "model.Person", GetTypeName("Person", "model"))
}

func Test_PackagePathToName(t *testing.T) {
	assert.Equal(t, "member", packagePathToName("github.com/m4gshm/fieldmeta/member"))
	assert.Equal(t, "gollections", packagePathToName("github.com/m4gshm/go-llections"))
	assert.Equal(t, "yamlv3", packagePathToName("yaml.v3"))
}
