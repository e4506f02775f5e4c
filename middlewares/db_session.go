package middlewares

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dbKey = "db"

// DBSession hands each request its own gorm session bound to the request
// context. Connections go back to the pool when the request ends, even if a
// handler panics or the client goes away.
func DBSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := db.Session(&gorm.Session{NewDB: true, Context: c.Request.Context()})
		c.Set(dbKey, session)
		defer c.Set(dbKey, nil)
		c.Next()
	}
}

// DB returns the request-scoped session set by DBSession.
func DB(c *gin.Context) *gorm.DB {
	v, ok := c.Get(dbKey)
	if !ok {
		panic("middlewares: DBSession not installed")
	}
	db, ok := v.(*gorm.DB)
	if !ok || db == nil {
		panic("middlewares: DB used outside of request scope")
	}
	return db
}
