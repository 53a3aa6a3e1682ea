package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleList = `# input dictionary
RSGToQQ_kMpl01_Run3Summer22EE:
1000: /store/shapes/RSGToQQ_M_1000.yaml
2000: /store/shapes/RSGToQQ_M_2000.yaml

QstarToJJ_Run3Summer22EE:
# comment inside a group
1500: /store/shapes/QstarToJJ_M_1500.yaml
notamass: /store/shapes/ignored.yaml

RSGToQQ_kMpl01_Run3Summer22EE:
3000: /store/shapes/RSGToQQ_M_3000.yaml
`

func TestParseGroupNames(t *testing.T) {
	names, err := ParseGroupNames(strings.NewReader(sampleList))
	require.NoError(t, err)

	// Duplicates collapse to first-seen order.
	require.Equal(t, []string{"RSGToQQ_kMpl01_Run3Summer22EE", "QstarToJJ_Run3Summer22EE"}, names)
}

func TestParseGroupNamesIgnoresPathLines(t *testing.T) {
	names, err := ParseGroupNames(strings.NewReader("/eos/some/path.yaml:\nReal_Group:\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"Real_Group"}, names)
}

func TestParseInputList(t *testing.T) {
	groups, err := ParseInputList(strings.NewReader(sampleList))
	require.NoError(t, err)
	require.Len(t, groups, 2)

	rsg := groups["RSGToQQ_kMpl01_Run3Summer22EE"]
	require.Len(t, rsg, 3)
	require.Equal(t, "/store/shapes/RSGToQQ_M_1000.yaml", rsg[1000])
	require.Equal(t, "/store/shapes/RSGToQQ_M_3000.yaml", rsg[3000])

	qstar := groups["QstarToJJ_Run3Summer22EE"]
	require.Len(t, qstar, 1)
	require.Equal(t, "/store/shapes/QstarToJJ_M_1500.yaml", qstar[1500])
}

func TestParseInputListSkipsOrphanEntries(t *testing.T) {
	groups, err := ParseInputList(strings.NewReader("1000: /orphan.yaml\nGroup:\n2000: /ok.yaml\n"))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups["Group"], 1)
}

func TestModelFromGroup(t *testing.T) {
	for _, tc := range []struct {
		name string
		want string
	}{
		{name: "RSGToQQ_kMpl01_Run3Summer22EE", want: "qq"},
		{name: "rsgtoqq_lowercase", want: "qq"},
		{name: "RSGToGG_kMpl01", want: "gg"},
		{name: "QstarToJJ_Run3Summer22EE", want: "qg"},
		{name: "SomethingElse", want: "qq"},
		{name: "", want: "qq"},
	} {
		require.Equal(t, tc.want, ModelFromGroup(tc.name), "group %q", tc.name)
	}
}
