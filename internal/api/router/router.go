package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/config"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/api/handler"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/api/middleware"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/jwt"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/redis"
)

// Setup inicializa e retorna o roteador Gin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, cache *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globais ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// autenticação (rotas públicas)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// rotas autenticadas
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, cache, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/register", middleware.RoleAuth("admin"), h.Auth.Register)

			// alunos
			alunos := authorized.Group("/alunos")
			{
				alunos.GET("", h.Student.List)
				alunos.GET("/:id", h.Student.Get)
				alunos.GET("/:id/cursos/:courseId/progresso", h.Academic.Progress)
				alunos.POST("", middleware.RoleAuth("admin", "secretaria"), h.Student.Create)
				alunos.PUT("/:id", middleware.RoleAuth("admin", "secretaria"), h.Student.Update)
				alunos.DELETE("/:id", middleware.RoleAuth("admin", "secretaria"), h.Student.Delete)
			}

			// cursos
			cursos := authorized.Group("/cursos")
			{
				cursos.GET("", h.Course.List)
				cursos.GET("/:id", h.Course.Get)
				cursos.GET("/:id/matriculas/total", h.Course.EnrollmentCount)
				cursos.GET("/:id/materiais", h.Material.ListByCourse)
				cursos.GET("/:id/atividades", h.Academic.ActivitiesByCourse)
				cursos.GET("/:id/calendario.ics", h.Export.CourseCalendar)
				cursos.POST("", middleware.RoleAuth("admin", "secretaria"), h.Course.Create)
				cursos.PUT("/:id", middleware.RoleAuth("admin", "secretaria"), h.Course.Update)
				cursos.DELETE("/:id", middleware.RoleAuth("admin", "secretaria"), h.Course.Delete)
			}

			// matrículas
			matriculas := authorized.Group("/matriculas")
			{
				matriculas.GET("", h.Enrollment.List)
				matriculas.POST("", middleware.RoleAuth("admin", "secretaria"), h.Enrollment.Create)
				matriculas.DELETE("", middleware.RoleAuth("admin", "secretaria"), h.Enrollment.Remove)
			}

			// turmas
			turmas := authorized.Group("/turmas")
			{
				turmas.GET("", h.Turma.List)
				turmas.GET("/:id", h.Turma.Get)
				turmas.POST("", middleware.RoleAuth("admin", "secretaria"), h.Turma.Create)
				turmas.PUT("/:id", middleware.RoleAuth("admin", "secretaria"), h.Turma.Update)
				turmas.DELETE("/:id", middleware.RoleAuth("admin", "secretaria"), h.Turma.Delete)
			}

			// materiais
			materiais := authorized.Group("/materiais")
			{
				materiais.POST("", middleware.RoleAuth("admin", "secretaria"), h.Material.Create)
				materiais.DELETE("/:id", middleware.RoleAuth("admin", "secretaria"), h.Material.Delete)
			}

			// atividades, entregas e notas
			authorized.POST("/atividades", middleware.RoleAuth("admin", "secretaria"), h.Academic.CreateActivity)
			authorized.PUT("/entregas", middleware.RoleAuth("admin", "secretaria"), h.Academic.SetSubmission)
			authorized.PUT("/notas/:id", middleware.RoleAuth("admin", "secretaria"), h.Academic.UpdateGrade)

			// dashboard e relatórios
			authorized.GET("/dashboard", h.Dashboard.Dashboard)
			authorized.GET("/relatorios/desempenho", h.Dashboard.Performance)

			// exportações e importação
			export := authorized.Group("/export")
			{
				export.GET("/alunos.csv", h.Export.StudentsCSV)
				export.GET("/alunos.xlsx", h.Export.StudentsXLSX)
				export.GET("/matriculas.csv", h.Export.EnrollmentsCSV)
				export.GET("/matriculas.xlsx", h.Export.EnrollmentsXLSX)
			}
			authorized.POST("/import/alunos", middleware.RoleAuth("admin", "secretaria"), h.Export.ImportStudents)
		}
	}

	return r
}
