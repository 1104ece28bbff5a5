package socketio_utils

import (
	"log"

	"Trivio/middleware"

	"github.com/zishang520/socket.io/v2/socket"
)

// VerifyConnection classifies a freshly connected socket. A valid bearer
// token in the handshake auth data yields a host/admin identity; anything
// else makes the connection a guest, which can join rooms and answer but
// never create rooms. Guests are not an error, so nothing is emitted here.
func VerifyConnection(client *socket.Socket) *middleware.Identity {
	identity := middleware.SocketIdentity(client.Handshake().Auth)
	if identity == nil {
		log.Printf("[CONN] Guest connection: %s", client.Id())
		return nil
	}
	log.Printf("[CONN] Authenticated connection: %s (user=%s role=%s)",
		client.Id(), identity.Username, identity.Role)
	return identity
}
