package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joefazee/countryview/internal/cache"
	"github.com/joefazee/countryview/internal/logger"
)

func TestContainer_Services(t *testing.T) {
	c := NewContainer(nil, logger.NewNullLogger(), &cache.MockCache{}, nil)

	assert.Nil(t, c.GetService("missing"))

	c.RegisterService("answer", 42)
	assert.Equal(t, 42, c.GetService("answer"))

	c.RegisterService("answer", 43)
	assert.Equal(t, 43, c.GetService("answer"))
}
