package monitor

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kak-tus/fdpowermon/pkg/types"
	"github.com/kak-tus/fdpowermon/pkg/version"
)

func (m *Monitor) getStatus(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, m.Status())
}

func (m *Monitor) getThemes(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, types.DescribeThemes(m.registry))
}

func (m *Monitor) setDefaultTheme(c *gin.Context) {
	var name string
	if err := c.BindJSON(&name); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	if _, ok := m.registry.Get(name); !ok {
		err := fmt.Errorf("theme %q is not registered", name)
		c.IndentedJSON(http.StatusNotFound, err.Error())
		_ = c.AbortWithError(http.StatusNotFound, err)
		return
	}

	m.registry.MakeDefault(name)

	logrus.Infof("set default theme to %s", name)

	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("default theme set to %s, it is used from the next poll", name))
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}
