package controllers

import (
	"errors"
	"ers/src/db"
	"ers/src/models"
	"ers/src/types"
	"ers/src/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func AuthRegister(ctx *gin.Context) (user *models.User, status int, err error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var muser models.User
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.
			Model(&models.User{}).
			Select("id").
			Where("email = ?", body.Email).
			First(&existing).
			Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("could not complete transaction")
			}
		}
		if existing.ID > 0 {
			err := errors.New("user is already registered in the system. Please proceed to Log In")
			log.Printf("error: %s\n", err.Error())
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password: %s\n", err.Error())
			return err
		}
		muser = models.User{
			Email:    body.Email,
			Password: string(hash),
			Name:     body.Name,
			Phone:    body.Phone,
			Role:     types.ROLE_USER,
		}
		if err := tx.Create(&muser).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &muser, http.StatusCreated, nil
}

func AuthLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var muser models.User
	if err = db.
		Model(&models.User{}).
		Where(&models.User{Email: body.Email}).
		First(&muser).
		Error; err != nil {
		log.Printf("error: %s\n", err.Error())
		return nil, http.StatusUnauthorized, errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(muser.Password), []byte(body.Password)); err != nil {
		return nil, http.StatusUnauthorized, errors.New("invalid email or password")
	}

	jwt, err := utils.GenerateJWT(muser.Email, muser.ID, muser.Role)
	if err != nil {
		log.Printf("Error signing token for user [%d]: %s\n", muser.ID, err.Error())
		return nil, http.StatusBadRequest, err
	}
	return &jwt, http.StatusOK, nil
}
