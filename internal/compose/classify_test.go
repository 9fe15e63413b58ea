package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifer612/undock-compose/internal/template"
)

func TestClassify_Port(t *testing.T) {
	entries := []template.Config{
		{Name: "WebUI", Type: TypePort, Target: "8080", Value: "8081", Mode: "tcp"},
	}

	out, err := Classify(entries, false)
	require.NoError(t, err)

	require.Len(t, out.Ports, 1)
	assert.Equal(t, PortMapping{Target: 8080, Published: 8081, Protocol: "tcp"}, out.Ports[0])
}

func TestClassify_PortDefaultsAndNoMode(t *testing.T) {
	entries := []template.Config{
		{Name: "API", Type: TypePort, Target: "9000", Default: "9001"},
	}

	out, err := Classify(entries, false)
	require.NoError(t, err)

	require.Len(t, out.Ports, 1)
	assert.Equal(t, PortMapping{Target: 9000, Published: 9001, Protocol: ""}, out.Ports[0])
}

func TestClassify_Path(t *testing.T) {
	entries := []template.Config{
		{Name: "Data", Type: TypePath, Target: "/data", Default: "/data"},
		{Name: "Config", Type: TypePath, Target: "/config", Value: "/mnt/user/appdata", Mode: "rw"},
	}

	out, err := Classify(entries, false)
	require.NoError(t, err)

	require.Len(t, out.Volumes, 2)
	// No trailing mode separator when Mode is absent
	assert.Equal(t, "/data:/data", out.Volumes[0])
	assert.Equal(t, "/mnt/user/appdata:/config:rw", out.Volumes[1])
}

func TestClassify_Devices(t *testing.T) {
	entries := []template.Config{
		{Name: "GPU", Type: TypeDevices, Target: "/dev/dri", Value: "/dev/dri", Mode: "rwm"},
	}

	out, err := Classify(entries, false)
	require.NoError(t, err)

	require.Len(t, out.Devices, 1)
	assert.Equal(t, "/dev/dri:/dev/dri:rwm", out.Devices[0])
}

func TestClassify_Variable(t *testing.T) {
	entries := []template.Config{
		{Name: "PUID", Type: TypeVariable, Target: "PUID", Value: "99"},
	}

	out, err := Classify(entries, false)
	require.NoError(t, err)
	assert.Equal(t, "99", out.Environment["PUID"])
}

func TestClassify_LabelLastWriteWins(t *testing.T) {
	entries := []template.Config{
		{Name: "A", Type: TypeLabel, Target: "foo", Value: "bar"},
		{Name: "B", Type: TypeLabel, Target: "foo", Value: "baz"},
	}

	out, err := Classify(entries, false)
	require.NoError(t, err)
	assert.Equal(t, "baz", out.Labels["foo"])
}

func TestClassify_DollarEscaping(t *testing.T) {
	entries := []template.Config{
		{Name: "Home", Type: TypeVariable, Target: "APP_HOME", Value: "$HOME"},
	}

	out, err := Classify(entries, false)
	require.NoError(t, err)
	assert.Equal(t, "$$HOME", out.Environment["APP_HOME"])
}

func TestClassify_UnknownTypeIgnored(t *testing.T) {
	entries := []template.Config{
		{Name: "Odd", Type: "Widget", Target: "x", Value: "y"},
	}

	out, err := Classify(entries, false)
	require.NoError(t, err)

	assert.Empty(t, out.Ports)
	assert.Empty(t, out.Volumes)
	assert.Empty(t, out.Devices)
	assert.Empty(t, out.Environment)
	assert.Empty(t, out.Labels)
}

func TestClassify_UnknownTypeStillAugmented(t *testing.T) {
	entries := []template.Config{
		{Name: "Odd Thing", Type: "Widget", Default: "d", Description: "desc",
			Display: "always", Required: "true", Mask: "false"},
	}

	out, err := Classify(entries, true)
	require.NoError(t, err)

	prefix := "net.unraid.docker.config.Odd_Thing"
	assert.Equal(t, "d", out.Labels[prefix+".default"])
	assert.Equal(t, "desc", out.Labels[prefix+".description"])
	assert.Equal(t, "always", out.Labels[prefix+".display"])
	assert.Equal(t, "true", out.Labels[prefix+".required"])
	assert.Equal(t, "false", out.Labels[prefix+".mask"])
}

func TestClassify_ExtendedLabelsPerEntry(t *testing.T) {
	entries := []template.Config{
		{Name: "WebUI", Type: TypePort, Target: "8080", Value: "8080"},
		{Name: "Data", Type: TypePath, Target: "/data", Value: "/data"},
	}

	out, err := Classify(entries, true)
	require.NoError(t, err)

	// Five keys per entry, nothing else in labels
	assert.Len(t, out.Labels, 10)

	off, err := Classify(entries, false)
	require.NoError(t, err)
	assert.Empty(t, off.Labels)
}

func TestClassify_ExtendedLabelsAbsentAttributes(t *testing.T) {
	entries := []template.Config{{Name: "Bare", Type: TypePort, Target: "80", Value: "80"}}

	out, err := Classify(entries, true)
	require.NoError(t, err)

	// Absent attributes come through as empty strings, keys still present
	v, ok := out.Labels["net.unraid.docker.config.Bare.description"]
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestClassify_MissingTarget(t *testing.T) {
	for _, typ := range []string{TypePort, TypePath, TypeDevices, TypeVariable, TypeLabel} {
		t.Run(typ, func(t *testing.T) {
			_, err := Classify([]template.Config{{Name: "broken", Type: typ, Value: "v"}}, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingTarget)
			assert.Contains(t, err.Error(), "broken")
		})
	}
}

func TestClassify_InvalidPort(t *testing.T) {
	_, err := Classify([]template.Config{
		{Name: "bad", Type: TypePort, Target: "http", Value: "8080"},
	}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPort)

	_, err = Classify([]template.Config{
		{Name: "bad", Type: TypePort, Target: "8080", Value: "auto"},
	}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestClassify_OrderPreserved(t *testing.T) {
	entries := []template.Config{
		{Name: "P1", Type: TypePort, Target: "1", Value: "1"},
		{Name: "P2", Type: TypePort, Target: "2", Value: "2"},
		{Name: "P3", Type: TypePort, Target: "3", Value: "3"},
	}

	out, err := Classify(entries, false)
	require.NoError(t, err)

	require.Len(t, out.Ports, 3)
	assert.Equal(t, 1, out.Ports[0].Target)
	assert.Equal(t, 2, out.Ports[1].Target)
	assert.Equal(t, 3, out.Ports[2].Target)
}
