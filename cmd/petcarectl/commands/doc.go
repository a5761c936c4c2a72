// Package commands define el CLI petcarectl contra la API de petcare.
//
// Comandos
//
//   - login <email> <password>   Inicia sesión
//   - logout                     Cierra sesión
//   - whoami                     Muestra la sesión actual
//   - pets                       Lista mascotas del perfil
//   - pets add <name> <type> <gender>
//   - cart list                  Carrito con totales
//   - cart add <id> [<name> <price>]  sin nombre ni precio usa el catálogo
//   - cart qty <id> <quantity>   quantity <= 0 quita la línea
//   - checkout <address> <city> <payment-method>
//   - orders                     Historial de pedidos
//
// El comando raíz arma un httpclient.Client antes de correr cualquier
// subcomando. La URL base sale de --api o de PETCARE_API.
package commands
