package constant

import (
	"net/http"

	"github.com/wanderlustbites/content-service/internal/model/response"
)

var BAD_REQUEST = response.ResponseData{
	Ec:  http.StatusBadRequest,
	Msg: "Bad request",
}

var INVALID_REQUEST = response.ResponseData{
	Ec:  http.StatusBadRequest,
	Msg: "Invalid request payload",
}

var UNAUTHORIZED = response.ResponseData{
	Ec:  http.StatusUnauthorized,
	Msg: "Unauthorized",
}

// INVALID_CREDENTIALS is the single rejection used for both unknown email
// and wrong password. Do not split these: the flattening is what keeps the
// login endpoint from confirming which accounts exist.
var INVALID_CREDENTIALS = response.ResponseData{
	Ec:  http.StatusUnauthorized,
	Msg: "Invalid email or password",
}

var NOT_AUTHENTICATED = response.ResponseData{
	Ec:  http.StatusUnauthorized,
	Msg: "Not authenticated",
}

var EMAIL_CONFLICT = response.ResponseData{
	Ec:  http.StatusConflict,
	Msg: "User with this email already exists",
}

var EMAIL_ALREADY_SUBSCRIBED = response.ResponseData{
	Ec:  http.StatusBadRequest,
	Msg: "This email is already subscribed",
}

var NOT_FOUND = response.ResponseData{
	Ec:  http.StatusNotFound,
	Msg: "Not found",
}

var INTERNAL_SERVER_ERROR = response.ResponseData{
	Ec:  http.StatusInternalServerError,
	Msg: "Internal server error",
}

var TRY_AGAIN_LATER = response.ResponseData{
	Ec:  http.StatusInternalServerError,
	Msg: "Something went wrong. Please try again later.",
}

var MAIL_SEND_FAILED = response.ResponseData{
	Ec:  http.StatusInternalServerError,
	Msg: "Failed to send email. Please try again later.",
}

var SUBSCRIBE_FAILED = response.ResponseData{
	Ec:  http.StatusInternalServerError,
	Msg: "Failed to subscribe. Please try again later.",
}
