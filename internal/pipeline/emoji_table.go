package pipeline

// emojiDescriptions is ordered; the first entry for an emoji wins.
var emojiDescriptions = []struct {
	emoji       string
	description string
}{
	// Faces
	{"😀", "cara sonriente"},
	{"😃", "cara sonriente con ojos grandes"},
	{"😄", "cara sonriente con ojos sonrientes"},
	{"😆", "cara sonriente con ojos cerrados"},
	{"😅", "cara sonriente con sudor"},
	{"🤣", "cara rodando de risa"},
	{"😂", "cara con lágrimas de alegría"},
	{"🙂", "cara ligeramente sonriente"},
	{"🙃", "cara al revés"},
	{"😉", "cara guiñando"},
	{"😊", "cara sonriente con ojos sonrientes"},
	{"😇", "cara sonriente con aureola"},
	{"🥰", "cara sonriente con corazones"},
	{"🤩", "cara con ojos de estrella"},
	{"😘", "cara mandando un beso"},
	{"😗", "cara besando"},
	{"😚", "cara besando con ojos cerrados"},
	{"😙", "cara besando con ojos sonrientes"},
	{"🥲", "cara sonriente con lágrima"},
	{"😋", "cara saboreando comida"},
	{"😛", "cara sacando la lengua"},
	{"😜", "cara guiñando y sacando la lengua"},
	{"🤪", "cara loca"},
	{"🤑", "cara con ojos de dinero"},
	{"🤗", "cara abrazando"},
	{"🤭", "cara con mano sobre la boca"},
	{"🤫", "cara haciendo silencio"},
	{"🤔", "cara pensativa"},
	{"🤨", "cara con ceja alzada"},
	{"😑", "cara sin expresión"},
	{"😶", "cara sin boca"},
	{"😒", "cara sin gracia"},
	{"🙄", "cara poniendo los ojos en blanco"},
	{"😬", "cara haciendo mueca"},
	{"🤥", "cara mentirosa"},
	{"😔", "cara pensativa"},
	{"😕", "cara confundida"},
	{"😣", "cara perseverante"},
	{"😖", "cara confundida"},
	{"😫", "cara cansada"},
	{"😩", "cara llorosa"},
	{"🥺", "cara suplicante"},
	{"😢", "cara llorando"},
	{"😭", "cara llorando a mares"},
	{"😤", "cara resoplando"},
	{"😠", "cara enojada"},
	{"😡", "cara muy enojada"},
	{"🤬", "cara con símbolos sobre la boca"},
	{"🤯", "cabeza explotando"},
	{"😳", "cara sonrojada"},
	{"🥵", "cara con calor"},
	{"🥶", "cara con frío"},
	{"😱", "cara gritando de miedo"},
	{"😨", "cara temerosa"},
	{"😰", "cara ansiosa con sudor"},
	{"😥", "cara triste pero aliviada"},
	{"😓", "cara con sudor frío"},
	{"😴", "cara durmiendo"},
	{"💤", "símbolo de sueño"},
	{"😪", "cara somnolienta"},
	{"😵", "cara mareada"},
	{"🥴", "cara mareada"},
	{"🤢", "cara con náuseas"},
	{"🤮", "cara vomitando"},
	{"🤧", "cara estornudando"},
	{"😷", "cara con mascarilla médica"},
	{"🤒", "cara con termómetro"},
	{"🤕", "cara con vendaje"},
	{"🤓", "geek"},

	// Hearts
	{"❤", "corazón rojo"},
	{"🤍", "corazón blanco"},
	{"🧡", "corazón naranja"},
	{"💛", "corazón amarillo"},
	{"💚", "corazón verde"},
	{"💙", "corazón azul"},
	{"💜", "corazón morado"},
	{"🖤", "corazón negro"},
	{"🤎", "corazón marrón"},
	{"💔", "corazón roto"},
	{"💕", "dos corazones"},
	{"💞", "corazones giratorios"},
	{"💓", "corazón latiendo"},
	{"💗", "corazón creciendo"},
	{"💖", "corazón brillante"},
	{"💘", "corazón con flecha"},
	{"💟", "decoración de corazón"},

	// Hands
	{"👍", "pulgar arriba"},
	{"✌", "señal de victoria"},
	{"👏", "manos aplaudiendo"},
	{"🙏", "manos en oración"},
	{"🤝", "apretón de manos"},
	{"👀", "ojos"},
	{"👎", "pulgar abajo"},
	{"👌", "señal de ok"},
	{"🤞", "dedos cruzados"},
	{"🤟", "gesto de te amo"},
	{"🤘", "cuernos"},
	{"🤙", "llamar"},
	{"👈", "dedo apuntando a la izquierda"},
	{"👉", "dedo apuntando a la derecha"},
	{"👆", "dedo apuntando arriba"},
	{"👇", "dedo apuntando abajo"},
	{"✋", "mano alzada"},
	{"🤚", "dorso de la mano alzada"},
	{"🖖", "saludo vulcano"},
	{"👋", "mano saludando"},
	{"🙌", "manos celebrando"},
	{"🤲", "palmas hacia arriba"},
	{"🤜", "puño hacia la derecha"},
	{"🤛", "puño hacia la izquierda"},
	{"✊", "puño alzado"},
	{"👊", "puño"},
	{"🫶", "manos formando corazón"},

	// Common symbols
	{"⭐", "estrella"},
	{"☀", "sol"},
	{"❄", "copo de nieve"},
	{"🔥", "fuego"},
	{"💯", "cien puntos"},
	{"🎉", "fiesta"},
	{"🎊", "confeti"},
	{"🪅", "piñata"},
	{"🥂", "brindis"},
	{"💫", "estrella mareada"},
	{"🌟", "estrella brillante"},
	{"✨", "destellos"},
	{"⚡", "rayo"},
	{"💥", "explosión"},
	{"💢", "símbolo de enojo"},
	{"💨", "corriendo"},
	{"💦", "gotas de sudor"},
	{"💧", "gota"},
	{"🌈", "arcoíris"},
	{"⛅", "sol parcialmente nublado"},
	{"⛄", "muñeco de nieve"},
	{"🌊", "ola"},

	// Food and drink
	{"🍕", "pizza"},
	{"🍔", "hamburguesa"},
	{"🍺", "cerveza"},
	{"🥑", "aguacate"},
	{"🥕", "zanahoria"},
	{"🌽", "maíz"},
	{"🥖", "baguette"},
	{"🧀", "queso"},
	{"🥓", "tocino"},
	{"🌭", "hot dog"},
	{"🥪", "sándwich"},
	{"🌮", "taco"},
	{"🌯", "burrito"},
	{"🎂", "pastel de cumpleaños"},
	{"☕", "café"},
	{"🥤", "bebida"},

	// Animals
	{"🐶", "cara de perro"},
	{"🐱", "cara de gato"},
	{"🐢", "tortuga"},
	{"🦊", "cara de zorro"},
	{"🙈", "mono que no ve"},
	{"🙉", "mono que no oye"},
	{"🙊", "mono que no habla"},
	{"🦆", "pato"},
	{"🦅", "águila"},
	{"🦉", "búho"},
	{"🦇", "murciélago"},
	{"🦄", "unicornio"},
	{"🦋", "mariposa"},
	{"🦗", "grillo"},
	{"🦂", "escorpión"},
	{"🦎", "lagarto"},
	{"🦑", "calamar"},
	{"🦀", "cangrejo"},
	{"🦈", "tiburón"},

	// Sports
	{"⚽", "balón de fútbol"},
	{"⚾", "béisbol"},
	{"🥎", "softball"},
	{"🎾", "tenis"},
	{"🎱", "bola ocho"},
	{"🪀", "yoyo"},
	{"🥅", "portería"},
	{"⛳", "golf"},
	{"🎣", "pesca"},
	{"🤿", "buceo"},
	{"🥊", "boxeo"},
	{"🥋", "artes marciales"},
	{"🎽", "camiseta de correr"},
	{"🛹", "patineta"},
	{"🛷", "trineo"},
	{"🥌", "curling"},
	{"🎿", "esquí"},
	{"🪂", "paracaídas"},
	{"🤸", "voltereta"},
	{"🤼", "lucha"},
	{"🤽", "waterpolo"},
	{"🤾", "balonmano"},
	{"🤹", "malabarismo"},
	{"🧘", "meditación"},
	{"🛀", "baño"},
	{"🛌", "durmiendo"},

	// Travel
	{"🚗", "coche"},
	{"🚕", "taxi"},
	{"🚙", "SUV"},
	{"🚌", "autobús"},
	{"🚎", "trolebús"},
	{"🚓", "coche de policía"},
	{"🚑", "ambulancia"},
	{"🚒", "camión de bomberos"},
	{"🛻", "camioneta"},
	{"🚚", "camión"},
	{"🚛", "camión articulado"},
	{"🚜", "tractor"},
	{"🛵", "scooter"},
	{"🚲", "bicicleta"},
	{"🛴", "patinete"},
	{"🚀", "cohete"},
	{"🛸", "platillo volador"},
	{"🚢", "barco"},
	{"⛵", "velero"},
	{"🚤", "lancha"},
	{"🚂", "locomotora"},
	{"🚃", "vagón de tren"},
	{"🚄", "tren bala"},
	{"🚅", "tren bala con nariz"},
	{"🚆", "tren"},
	{"🚇", "metro"},
	{"🚈", "tren ligero"},
	{"🚉", "estación"},
	{"🚊", "tranvía"},
	{"🚞", "tren de montaña"},
	{"🚟", "tren suspendido"},
	{"🚠", "teleférico"},
	{"🚡", "tranvía aéreo"},

	// Objects
	{"📱", "teléfono móvil"},
	{"💻", "portátil"},
	{"💽", "minidisc"},
	{"💾", "disquete"},
	{"💿", "CD"},
	{"📀", "DVD"},
	{"🧮", "ábaco"},
	{"🎥", "cámara de cine"},
	{"📹", "videocámara"},
	{"📷", "cámara"},
	{"📸", "cámara con flash"},
	{"📼", "videocasete"},
	{"🔎", "lupa hacia la derecha"},
	{"💡", "bombilla"},
	{"🔦", "linterna"},
	{"🪔", "lámpara de aceite"},
	{"📔", "cuaderno"},
	{"📕", "libro cerrado"},
	{"📖", "libro abierto"},
	{"📗", "libro verde"},
	{"📘", "libro azul"},
	{"📙", "libro naranja"},
	{"📚", "libros"},
	{"📓", "cuaderno"},
	{"📒", "libro de contabilidad"},
	{"📃", "página curvada"},
	{"📜", "pergamino"},
	{"📄", "página"},
	{"📰", "periódico"},
	{"📑", "marcadores"},
	{"🔖", "marcapáginas"},
	{"💰", "bolsa de dinero"},
	{"🪙", "moneda"},
	{"💴", "yen"},
	{"💵", "dólar"},
	{"💶", "euro"},
	{"💷", "libra"},
	{"💸", "dinero con alas"},
	{"💳", "tarjeta de crédito"},
	{"🧾", "recibo"},
	{"💎", "diamante"},
	{"🪜", "escalera"},
	{"🧰", "caja de herramientas"},
	{"🔧", "llave inglesa"},
	{"🔨", "martillo"},
	{"🪓", "hacha"},
	{"🪚", "sierra"},
	{"🔩", "tuerca y tornillo"},
	{"🪤", "trampa para ratones"},
	{"🧲", "imán"},
	{"🪣", "cubo"},
	{"🧽", "esponja"},
	{"🧴", "botella de loción"},
	{"🧷", "imperdible"},
	{"🧹", "escoba"},
	{"🧺", "cesta"},
	{"🪑", "silla"},
	{"🚪", "puerta"},
	{"🪟", "ventana"},
	{"🚿", "ducha"},
	{"🚽", "inodoro"},
	{"🪠", "desatascador"},
	{"🧻", "papel higiénico"},
	{"🪥", "cepillo de dientes"},
	{"🧼", "jabón"},
	{"🪒", "maquinilla de afeitar"},
	{"🧯", "extintor"},
	{"🛒", "carrito de compras"},

	// Signs
	{"❗", "exclamación"},
	{"❓", "interrogación"},
	{"⭕", "círculo rojo"},
	{"🚫", "prohibido"},
	{"💣", "bomba"},
	{"💬", "globo de diálogo"},
	{"💭", "globo de pensamiento"},

	// Flags
	{"🚩", "bandera triangular"},

	// Time
	{"🕑", "dos en punto"},
	{"🕒", "tres en punto"},
	{"🕓", "cuatro en punto"},
	{"🕔", "cinco en punto"},
	{"🕕", "seis en punto"},
	{"🕖", "siete en punto"},
	{"🕗", "ocho en punto"},
	{"🕘", "nueve en punto"},
	{"🕙", "diez en punto"},
	{"🕚", "once en punto"},
	{"🕛", "doce en punto"},
	{"📅", "calendario"},
	{"📆", "calendario de mesa"},
	{"📇", "fichero"},

	// Music
	{"🎵", "nota musical"},
	{"🎶", "notas musicales"},
	{"🎼", "partitura"},
	{"🎹", "piano"},
	{"🎷", "saxofón"},
	{"🎺", "trompeta"},
	{"🎸", "guitarra"},
	{"🪕", "banjo"},
	{"🎻", "violín"},
	{"🎤", "micrófono"},
	{"🎧", "auriculares"},
	{"📻", "radio"},
	{"📺", "televisión"},
	{"🎬", "claqueta"},
	{"🎭", "máscaras de teatro"},
	{"🎪", "circo"},
	{"🎨", "paleta de pintor"},
	{"🎯", "diana"},
	{"🎲", "dado"},
	{"🎮", "videojuego"},
	{"🎰", "máquina tragaperras"},
	{"🎳", "bolos"},

	// Fantasy
	{"🪄", "varita mágica"},
	{"🔮", "bola de cristal"},
	{"🧿", "ojo turco"},
	{"🪬", "mano de Fátima"},
	{"🎃", "calabaza de Halloween"},
	{"👻", "fantasma"},
	{"💀", "calavera"},
	{"👽", "alienígena"},
	{"👾", "monstruo de videojuego"},
	{"🤖", "robot"},
	{"🎅", "Papá Noel"},
	{"🤶", "Mamá Noel"},
	{"🧙", "mago"},
	{"🧚", "hada"},
	{"🧛", "vampiro"},
	{"🧜", "sirena"},
	{"🧞", "genio"},
	{"🧟", "zombi"},
	{"🦸", "superhéroe"},
	{"🦹", "supervillano"},
	{"🤺", "esgrima"},
	{"🚣", "remo"},
	{"🚴", "ciclismo"},
	{"🚵", "ciclismo de montaña"},
}
