package v1

import (
	"fmt"
	"net/http"

	"github.com/appcanvas-backend/services"
	"github.com/gin-gonic/gin"
)

// deployedShell is the HTML page a deployed project is served in. The
// stored code is embedded verbatim, without sanitization or execution.
const deployedShell = `<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body>
%s
</body>
</html>
`

// DeployedHandler serves deployed projects publicly as HTML
type DeployedHandler struct {
	projects *services.ProjectService
}

// NewDeployedHandler creates a new deployed render handler instance
func NewDeployedHandler(projects *services.ProjectService) *DeployedHandler {
	return &DeployedHandler{projects: projects}
}

// Render serves the stored code of a deployed project in a minimal HTML
// shell. Absent, private and never-deployed projects all render as 404.
func (h *DeployedHandler) Render(c *gin.Context) {
	project, err := h.projects.GetDeployed(c.Param("projectId"))
	if err != nil {
		c.String(http.StatusNotFound, "Project not found or not deployed")
		return
	}

	page := fmt.Sprintf(deployedShell, project.Title, project.Code)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
