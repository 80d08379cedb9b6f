package mime

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_SplitField(t *testing.T) {
	require.Equal(t, []string{"std", "url", "pem"}, SplitField(" std ,url,  pem"))
	require.Equal(t, []string{"mime"}, SplitField("mime,"))
	require.Empty(t, SplitField("  "))
}
